package caltime

import (
	"testing"
)

func TestOptionsFromEnv(t *testing.T) {
	for idx, tc := range []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{" TRUE ", true},
		{"false", false},
		{"0", false},
		{"bogus", false},
	} {
		getenv := func(key string) string {
			if key == EnvLegacyMillisecondVar {
				return tc.value
			}
			return ""
		}
		if got := optionsFromEnv(getenv); got.LegacyMillisecondCheck != tc.want {
			t.Errorf("%s[%d] failed: %q want %t, got %t",
				t.Name(), idx, tc.value, tc.want, got.LegacyMillisecondCheck)
		}
	}
}

func TestPickOptions(t *testing.T) {
	if o := pickOptions(nil); o != DefaultOptions() {
		t.Errorf("%s failed: empty options should yield the defaults", t.Name())
	}

	legacy := Options{LegacyMillisecondCheck: true}
	if o := pickOptions([]Options{legacy, {}}); !o.LegacyMillisecondCheck {
		t.Errorf("%s failed: first options instance not honored", t.Name())
	}
}
