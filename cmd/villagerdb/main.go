package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	"go.uber.org/zap"

	"github.com/fulldump/villagerdb/bootstrap"
	"github.com/fulldump/villagerdb/configuration"
)

var banner = `
 _   _ _ _ _                       ____  ____
| | | (_) | | __ _  __ _  ___ _ __|  _ \| __ )
| | | | | | |/ _' |/ _' |/ _ \ '__| | | |  _ \
 \ V /| | | | (_| | (_| |  __/ |  | |_| | |_) |
  \_/ |_|_|_|\__,_|\__, |\___|_|  |____/|____/
                   |___/   version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	l, err := bootstrap.NewLogger(&c)
	if err != nil {
		fmt.Println("ERROR: logger:", err.Error())
		os.Exit(-1)
	}
	defer l.Sync()

	start, _, err := bootstrap.Bootstrap(&c, l)
	if err != nil {
		l.Error("bootstrap", zap.Error(err))
		os.Exit(-1)
	}

	start()
}
