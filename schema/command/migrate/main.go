package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/jusconnect/jusconnect-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("jusconnect")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	// search_path is a per-connection setting
	db.DB().SetMaxOpenConns(1)

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS jusconnect`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO jusconnect").Error; err != nil {
		panic(err)
	}

	if err := store.Migrate(db); err != nil {
		panic(err)
	}
}
