package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moasq/pick"
)

// fileConfig is the YAML shape accepted by --config: optional display
// settings plus an item list. Explicit command-line flags override the
// file. Items may be plain strings in the same shorthand the command
// line accepts, or mappings with explicit fields:
//
//	delimiter: " | "
//	wrap: true
//	descriptions: all
//	items:
//	  - "Staging(s): deploys to the staging cluster"
//	  - label: Production
//	    short: p
//	    description: deploys to the production cluster
type fileConfig struct {
	Delimiter    *string    `yaml:"delimiter"`
	Brackets     *string    `yaml:"brackets"`
	Wrap         *bool      `yaml:"wrap"`
	AltScreen    *bool      `yaml:"alt-screen"`
	Descriptions *string    `yaml:"descriptions"`
	NameWidth    *string    `yaml:"name-width"`
	Items        []fileItem `yaml:"items"`
}

// apply copies the file's display settings onto cfg. Absent keys leave
// cfg untouched.
func (f *fileConfig) apply(cfg *pick.Config) error {
	if f.Delimiter != nil {
		cfg.Delimiter = *f.Delimiter
	}
	if f.Brackets != nil {
		cfg.SetBrackets(*f.Brackets)
	}
	if f.Wrap != nil {
		cfg.Wrap = *f.Wrap
	}
	if f.AltScreen != nil {
		cfg.AlternateScreen = *f.AltScreen
	}
	if f.Descriptions != nil {
		mode, err := parseDescriptions(*f.Descriptions)
		if err != nil {
			return err
		}
		cfg.Descriptions = mode
	}
	if f.NameWidth != nil {
		width, err := parseNameWidth(*f.NameWidth)
		if err != nil {
			return err
		}
		cfg.NameWidth = width
	}
	return nil
}

func (f *fileConfig) items() []pick.Item {
	items := make([]pick.Item, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, it.item())
	}
	return items
}

type fileItem struct {
	Label       string `yaml:"label"`
	Short       string `yaml:"short"`
	Description string `yaml:"description"`
}

func (f *fileItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		it := pick.ParseItem(node.Value)
		f.Label, f.Short, f.Description = it.Label, it.Short, it.Description
		return nil
	}
	type plain fileItem
	return node.Decode((*plain)(f))
}

func (f fileItem) item() pick.Item {
	it := pick.ParseItem(f.Label)
	it.Description = f.Description
	if f.Short != "" {
		it.Short = f.Short
		it.Key = pick.KeyFor(f.Short)
	}
	return it
}

// loadConfigFile reads display settings and extra items from a YAML file.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &file, nil
}
