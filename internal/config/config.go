package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	ServerPort int

	MongoURI string
	MongoDB  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MediaBucket    string

	RedisAddr     string
	RedisPassword string

	WSEnabled bool

	JWTPublicKey string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("WS_ENABLED", true)

	required := []string{
		"SERVER_PORT",
		"MONGO_URI",
		"MONGO_DB",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"MEDIA_BUCKET",
	}
	for _, key := range required {
		if !viper.IsSet(key) || viper.GetString(key) == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	return &Settings{
		ServerPort:     viper.GetInt("SERVER_PORT"),
		MongoURI:       viper.GetString("MONGO_URI"),
		MongoDB:        viper.GetString("MONGO_DB"),
		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		MediaBucket:    viper.GetString("MEDIA_BUCKET"),
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		RedisPassword:  viper.GetString("REDIS_PASSWORD"),
		WSEnabled:      viper.GetBool("WS_ENABLED"),
		JWTPublicKey:   viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
