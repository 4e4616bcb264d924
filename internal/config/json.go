package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type limitJSON struct {
	Requests int      `json:"requests"`
	Window   Duration `json:"window"`
}

type StructuredJSONConfig struct {
	App struct {
		Environment   string   `json:"environment"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		LogLevel      string   `json:"log_level"`
		MaxUploadSize int64    `json:"media_max_upload_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		MediaProvider  string   `json:"media_provider"`
		RequestTimeout Duration `json:"request_timeout"`
		Cloudinary     struct {
			CloudName string `json:"cloud_name"`
			APIKey    string `json:"api_key"`
			APISecret string `json:"api_secret"`
			BaseURL   string `json:"base_url"`
		} `json:"cloudinary,omitempty"`
		S3 struct {
			Region          string `json:"region"`
			Bucket          string `json:"bucket"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			UsePathStyle    bool   `json:"use_path_style"`
			PublicBaseURL   string `json:"public_base_url"`
		} `json:"s3,omitempty"`
	} `json:"adapter,omitempty"`

	RateLimit struct {
		Backend      string    `json:"backend"`
		RedisAddress string    `json:"redis_address"`
		General      limitJSON `json:"general"`
		Auth         limitJSON `json:"auth"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		LimiterSweepInterval Duration `json:"limiter_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}

func (j StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:   j.App.Environment,
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			BcryptCost:    j.App.BcryptCost,
			LogLevel:      j.App.LogLevel,
			MaxUploadSize: j.App.MaxUploadSize,
		},
		Storage: Storage{
			DB: DB{
				DSN:          j.Storage.DB.DSN,
				MaxOpenConns: j.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:        j.Server.HTTPAddress,
			RequestTimeout:     time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(j.Server.ShutdownTimeout),
			CORSAllowedOrigins: j.Server.CORSAllowedOrigins,
		},
		Adapter: Adapter{
			MediaProvider:  j.Adapter.MediaProvider,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			Cloudinary: Cloudinary{
				CloudName: j.Adapter.Cloudinary.CloudName,
				APIKey:    j.Adapter.Cloudinary.APIKey,
				APISecret: j.Adapter.Cloudinary.APISecret,
				BaseURL:   j.Adapter.Cloudinary.BaseURL,
			},
			S3: S3{
				Region:          j.Adapter.S3.Region,
				Bucket:          j.Adapter.S3.Bucket,
				Endpoint:        j.Adapter.S3.Endpoint,
				AccessKeyID:     j.Adapter.S3.AccessKeyID,
				SecretAccessKey: j.Adapter.S3.SecretAccessKey,
				UsePathStyle:    j.Adapter.S3.UsePathStyle,
				PublicBaseURL:   j.Adapter.S3.PublicBaseURL,
			},
		},
		RateLimit: RateLimit{
			Backend:      j.RateLimit.Backend,
			RedisAddress: j.RateLimit.RedisAddress,
			General:      Limit{Requests: j.RateLimit.General.Requests, Window: time.Duration(j.RateLimit.General.Window)},
			Auth:         Limit{Requests: j.RateLimit.Auth.Requests, Window: time.Duration(j.RateLimit.Auth.Window)},
		},
		Workers: Workers{
			LimiterSweepInterval: time.Duration(j.Workers.LimiterSweepInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
