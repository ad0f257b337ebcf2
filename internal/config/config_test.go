package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
calendar:
  name: Work
  days: 5
  sort_by: name
report:
  output: ${HOME}/report.txt
log:
  level: DEBUG
events:
  - name: Standup
    day: 1
    start: "09:00"
    duration: 15
    note: daily sync
  - name: Lunch
    day: 1
    start: 1200
    duration: 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.Name != "Work" || cfg.Calendar.Days != 5 || cfg.Calendar.SortBy != "name" {
		t.Errorf("Calendar = %+v, want {Work 5 name}", cfg.Calendar)
	}
	if !cfg.Report.Summary {
		t.Error("Report.Summary = false, want default true")
	}
	if got := cfg.Log.GetLevel(); got != "debug" {
		t.Errorf("Log.GetLevel() = %q, want debug", got)
	}

	if len(cfg.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(cfg.Events))
	}
	if cfg.Events[0].StartTime() != 900 || cfg.Events[0].Note != "daily sync" {
		t.Errorf("Events[0] = %+v, want start 900 with note", cfg.Events[0])
	}
	if cfg.Events[1].StartTime() != 1200 || cfg.Events[1].Note != "" {
		t.Errorf("Events[1] = %+v, want start 1200 without note", cfg.Events[1])
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "calendar:\n  name: Home\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.Days != 7 {
		t.Errorf("Calendar.Days = %d, want default 7", cfg.Calendar.Days)
	}
	if cfg.Calendar.SortBy != "start_time" {
		t.Errorf("Calendar.SortBy = %q, want default start_time", cfg.Calendar.SortBy)
	}
	if cfg.Log.GetLevel() != "info" {
		t.Errorf("Log.GetLevel() = %q, want info", cfg.Log.GetLevel())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DAYCAL_CALENDAR_DAYS", "3")

	cfg, err := Load(writeConfig(t, "calendar:\n  name: Home\n  days: 10\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.Days != 3 {
		t.Errorf("Calendar.Days = %d, want 3 from environment", cfg.Calendar.Days)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing file) expected error, got nil")
	}

	_, err := Load(writeConfig(t, "calendar:\n  days: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "calendar.name") {
		t.Errorf("Load(no name) error = %v, want calendar.name error", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Calendar: CalendarConfig{Name: "Work", Days: 2, SortBy: "start_time"},
			Events: []EventConfig{
				{Name: "Standup", Day: 1, Start: "09:00", Duration: 15},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"Missing name", func(c *Config) { c.Calendar.Name = "" }, "calendar.name"},
		{"Zero days", func(c *Config) { c.Calendar.Days = 0 }, "calendar.days"},
		{"Unknown sort key", func(c *Config) { c.Calendar.SortBy = "priority" }, "calendar.sort_by"},
		{"Event without name", func(c *Config) { c.Events[0].Name = "" }, "events[0].name"},
		{"Event day past end", func(c *Config) { c.Events[0].Day = 3 }, "events[0].day"},
		{"Event bad start", func(c *Config) { c.Events[0].Start = "25:00" }, "events[0].start"},
		{"Event zero duration", func(c *Config) { c.Events[0].Duration = 0 }, "events[0].duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("REPORT_DIR", "/tmp/reports")

	cfg := &Config{Report: ReportConfig{Output: "$REPORT_DIR/week.txt"}}
	cfg.ExpandEnvVars()

	if cfg.Report.Output != "/tmp/reports/week.txt" {
		t.Errorf("Report.Output = %q, want /tmp/reports/week.txt", cfg.Report.Output)
	}
}
