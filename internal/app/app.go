package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

var Version = "0.1.0"

func Init() {
	var confs flagConfig
	var version bool

	flag.Var(&confs, "config", "bitdump config (path to file or raw YAML), support multiple")
	flag.BoolVar(&version, "version", false, "Print the version of the application and exit")
	flag.Parse()

	if version {
		vcsRevision := ""
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					if len(setting.Value) > 7 {
						setting.Value = setting.Value[:7]
					}
					vcsRevision = "(" + setting.Value + ")"
				}
			}
		}
		fmt.Printf("bitdump version %s%s %s/%s\n", Version, vcsRevision, runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	initConfig(confs)
	initLogger()

	log.Logger = Logger
}
