package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/freehand/internal/palette"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentPalette string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentPalette = ""
			if name, ok := strings.CutPrefix(currentSection, "palette."); ok {
				currentPalette = name
				if _, exists := cfg.Palettes[name]; !exists {
					cfg.Palettes[name] = nil
				}
			}
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		switch {
		case currentPalette != "":
			col, err := palette.ParseColor(value)
			if err != nil {
				return nil, fmt.Errorf("error in section [%s]: invalid color for key %s: %w", currentSection, key, err)
			}
			cfg.Palettes[currentPalette] = append(cfg.Palettes[currentPalette], palette.Entry{Name: key, Color: col})
		case currentSection == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case currentSection == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "line_type":
		cfg.LineType = value
	case "color", "colour":
		cfg.Color = value
	case "brush_width":
		return setFloat(&cfg.BrushWidth, key, value)
	case "eraser_width":
		return setFloat(&cfg.EraserWidth, key, value)
	case "max_bias":
		return setFloat(&cfg.MaxBias, key, value)
	case "background":
		cfg.Background = value
	case "save_dir":
		cfg.SaveDir = value
	}
	return nil
}

func setFloat(dst *float32, key, value string) error {
	v, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	if v < 0 {
		return fmt.Errorf("negative value for key %s", key)
	}
	*dst = float32(v)
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "export":
		n.Export = b
	case "copy":
		n.Copy = b
	}
	return nil
}
