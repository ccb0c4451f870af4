package config

import (
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

const DefaultFile = "monkey.yml"

type Settings struct {
	// MaxDepth bounds evaluation recursion; deeper programs fail with a stack overflow.
	MaxDepth int    `yaml:"MaxDepth"`
	Prompt   string `yaml:"Prompt"`
	Color    bool   `yaml:"Color"`
}

func Default() Settings {
	return Settings{
		MaxDepth: 10000,
		Prompt:   ">> ",
		Color:    true,
	}
}

// Load reads settings from path. Keys missing from the file keep their defaults,
// and a missing file yields Default().
func Load(path string) (Settings, error) {
	s := Default()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}

	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Default(), err
	}
	if s.MaxDepth <= 0 {
		s.MaxDepth = Default().MaxDepth
	}
	return s, nil
}

func Write(path string, s Settings) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, out, 0o644)
}
