package compose

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/mattias-p/mkjson/encode"
)

type corpusCase struct {
	Name       string   `yaml:"name"`
	Directives []string `yaml:"directives"`
	Want       string   `yaml:"want"`
	Error      string   `yaml:"error"`
}

func TestCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/compose.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var cases []corpusCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatal(err)
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			root, err := Compose(tc.Directives)
			if tc.Error != "" {
				if err == nil {
					t.Fatalf("Compose(%v) succeeded, want error %q", tc.Directives, tc.Error)
				}
				if got := err.Error(); got != tc.Error {
					t.Errorf("Compose(%v) error = %q, want %q", tc.Directives, got, tc.Error)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compose(%v) error = %v", tc.Directives, err)
			}
			if got := encode.MustString(root); got != tc.Want {
				t.Errorf("Compose(%v) = %s, want %s", tc.Directives, got, tc.Want)
			}
		})
	}
}
