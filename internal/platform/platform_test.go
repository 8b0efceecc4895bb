package platform

import (
	"testing"
	"time"
)

func TestOptionDefaults(t *testing.T) {
	var o Options
	if o.appName() != "Freehand" {
		t.Fatalf("app name = %q", o.appName())
	}
	if o.timeout() != DefaultTimeout {
		t.Fatalf("timeout = %v", o.timeout())
	}
	o = Options{AppName: "Sketch", Timeout: time.Second}
	if o.appName() != "Sketch" || o.timeout() != time.Second {
		t.Fatalf("options = %+v", o)
	}
}
