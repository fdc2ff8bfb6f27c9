package app

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ConfigPath string

var configs [][]byte

func initConfig(confs flagConfig) {
	if confs == nil {
		confs = []string{"bitdump.yaml"}
	}

	for _, conf := range confs {
		if len(conf) == 0 {
			continue
		}
		if conf[0] == '{' {
			// config as raw YAML or JSON
			configs = append(configs, []byte(conf))
			continue
		}

		// config as file
		data, _ := os.ReadFile(conf)
		if data == nil {
			continue
		}

		if ConfigPath == "" {
			ConfigPath = conf
		}

		configs = append(configs, data)
	}
}

// LoadConfig - unmarshal every config blob into v, bad YAML only warns
func LoadConfig(v any) {
	for _, data := range configs {
		if err := yaml.Unmarshal(data, v); err != nil {
			Logger.Warn().Err(err).Send()
		}
	}
}

type flagConfig []string

func (c *flagConfig) String() string {
	return strings.Join(*c, " ")
}

func (c *flagConfig) Set(value string) error {
	*c = append(*c, value)
	return nil
}
