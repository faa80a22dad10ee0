package config

import (
	"testing"

	"github.com/spf13/afero"
)

func Test_getConfigPath(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		paths []string
		exp   string
	}{
		{
			name:  "no config",
			paths: []string{},
			exp:   "",
		},
		{
			name:  "primary",
			paths: []string{".update-docker-ref.yaml"},
			exp:   ".update-docker-ref.yaml",
		},
		{
			name:  "another",
			paths: []string{".github/update-docker-ref.yaml"},
			exp:   ".github/update-docker-ref.yaml",
		},
		{
			name:  "yml",
			paths: []string{".github/update-docker-ref.yml"},
			exp:   ".github/update-docker-ref.yml",
		},
		{
			name:  "both primary and others",
			paths: []string{".update-docker-ref.yml", ".update-docker-ref.yaml", ".github/update-docker-ref.yaml"},
			exp:   ".update-docker-ref.yaml",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, path := range d.paths {
				if err := afero.WriteFile(fs, path, []byte(""), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := getConfigPath(fs)
			if err != nil {
				t.Fatal(err)
			}
			if got != d.exp {
				t.Fatalf(`wanted %s, got %s`, d.exp, got)
			}
		})
	}
}
