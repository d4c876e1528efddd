// Package conf loads the service configuration file and exposes it as a
// process-wide viper instance.
package conf

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

var Conf *viper.Viper

// InitConf reads the yaml config at path. Environment variables override
// file values with keys upper-cased and dots turned into underscores
// (server.addr -> SERVER_ADDR).
func InitConf(path string) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout_s", 5)
	v.SetDefault("auth.rate_limit_rps", 1)
	v.SetDefault("auth.rate_limit_burst", 3)
	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config %s not read, running on defaults and env: %v", path, err)
	}
	Conf = v
}
