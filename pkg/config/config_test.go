package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jdfalk/update-docker-ref/pkg/config"
	"github.com/spf13/afero"
)

func TestConfig_Init(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		cfg     *config.Config
		exp     *config.Config
		wantErr bool
	}{
		{
			name: "default",
			cfg:  &config.Config{},
			exp:  &config.Config{Registry: "ghcr.io/jdfalk"},
		},
		{
			name: "custom",
			cfg:  &config.Config{Registry: "registry.example.com/team"},
			exp:  &config.Config{Registry: "registry.example.com/team"},
		},
		{
			name:    "trailing slash",
			cfg:     &config.Config{Registry: "ghcr.io/jdfalk/"},
			wantErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			err := d.cfg.Init()
			if d.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, d.cfg); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ".update-docker-ref.yaml", []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	finder := config.NewFinder(fs)
	got, err := finder.Find("foo.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got != "foo.yaml" {
		t.Fatalf("wanted foo.yaml, got %s", got)
	}
	got, err = finder.Find("")
	if err != nil {
		t.Fatal(err)
	}
	if got != ".update-docker-ref.yaml" {
		t.Fatalf("wanted .update-docker-ref.yaml, got %s", got)
	}
}

func TestReader_Read(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		path    string
		exp     *config.Config
		wantErr bool
	}{
		{
			name: "no path",
			exp:  &config.Config{},
		},
		{
			name:    "registry",
			path:    "config.yaml",
			content: "registry: registry.example.com/team\n",
			exp:     &config.Config{Registry: "registry.example.com/team"},
		},
		{
			name:    "comments only",
			path:    "config.yaml",
			content: "# registry: ghcr.io/jdfalk\n",
			exp:     &config.Config{},
		},
		{
			name:    "invalid yaml",
			path:    "config.yaml",
			content: "registry: [\n",
			wantErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.path != "" {
				if err := afero.WriteFile(fs, d.path, []byte(d.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg := &config.Config{}
			err := config.NewReader(fs).Read(cfg, d.path)
			if d.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, cfg); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestReader_Read_notFound(t *testing.T) {
	t.Parallel()
	if err := config.NewReader(afero.NewMemMapFs()).Read(&config.Config{}, "config.yaml"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
