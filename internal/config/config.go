package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/newsletter"
	"NewsletterDesk/internal/textdecode"
)

const (
	configPathEnv     = "NEWSLETTER_CONFIG"
	logLevelEnv       = "LOG_LEVEL"
	submissionsDirEnv = "SUBMISSIONS_FOLDER"
	shareURLEnv       = "SHARE_URL"
	sharePasswordEnv  = "SHARE_PASSWORD"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging     LoggingConfig          `yaml:"logging"`
	Sources     []string               `yaml:"sources"`
	Submissions SubmissionsConfig      `yaml:"submissions"`
	Share       ShareConfig            `yaml:"share"`
	Departments DepartmentsConfig      `yaml:"departments"`
	Decoding    DecodingConfig         `yaml:"decoding"`
	Newsletter  newsletter.Boilerplate `yaml:"newsletter"`
	Output      OutputConfig           `yaml:"output"`
}

// LoggingConfig selects slog level and handler format ("text" or "json").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SubmissionsConfig points at the local folder members save articles into.
type SubmissionsConfig struct {
	Folder string `yaml:"folder"`
}

// ShareConfig describes the public cloud-share link and its request limits.
type ShareConfig struct {
	URL             string        `yaml:"url"`
	Password        string        `yaml:"password"`
	PageTimeout     time.Duration `yaml:"pageTimeout"`
	DownloadTimeout time.Duration `yaml:"downloadTimeout"`
	MaxArchiveMB    int64         `yaml:"maxArchiveMb"`
	UserAgent       string        `yaml:"userAgent"`
}

// DepartmentsConfig is the publication's department order and its two special sections.
type DepartmentsConfig struct {
	Catalog    []string `yaml:"catalog"`
	Intro      string   `yaml:"intro"`
	Leadership string   `yaml:"leadership"`
}

// DecodingConfig lists encodings tried, in order, for submitted text.
type DecodingConfig struct {
	Encodings []string `yaml:"encodings"`
}

// OutputConfig says where the assembled issue goes; empty means stdout.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// BuildCatalog builds the department catalog.
func (d DepartmentsConfig) BuildCatalog() *domain.Catalog {
	return domain.NewCatalog(d.Catalog, d.Intro, d.Leadership)
}

// Load reads YAML configuration named by NEWSLETTER_CONFIG (if present) and
// applies environment overrides.
func Load() Config {
	return LoadFrom(os.Getenv(configPathEnv))
}

// LoadFrom is Load with an explicit file path; an empty path skips the file.
func LoadFrom(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			// Seeded so that omitted boilerplate keys keep the default copy
			// while an explicit "" clears an optional line.
			fileCfg := Config{Newsletter: newsletter.DefaultBoilerplate()}
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Newsletter.Validate(); err != nil {
		log.Printf("config: %v (reverting to default boilerplate)", err)
		cfg.Newsletter = newsletter.DefaultBoilerplate()
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(submissionsDirEnv); v != "" {
		c.Submissions.Folder = v
	}

	if v := os.Getenv(shareURLEnv); v != "" {
		c.Share.URL = v
	}

	if v := os.Getenv(sharePasswordEnv); v != "" {
		c.Share.Password = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	if override.Submissions.Folder != "" {
		base.Submissions.Folder = override.Submissions.Folder
	}

	if override.Share.URL != "" {
		base.Share.URL = override.Share.URL
	}
	if override.Share.Password != "" {
		base.Share.Password = override.Share.Password
	}
	if override.Share.PageTimeout > 0 {
		base.Share.PageTimeout = override.Share.PageTimeout
	}
	if override.Share.DownloadTimeout > 0 {
		base.Share.DownloadTimeout = override.Share.DownloadTimeout
	}
	if override.Share.MaxArchiveMB > 0 {
		base.Share.MaxArchiveMB = override.Share.MaxArchiveMB
	}
	if override.Share.UserAgent != "" {
		base.Share.UserAgent = override.Share.UserAgent
	}

	if len(override.Departments.Catalog) > 0 {
		base.Departments.Catalog = override.Departments.Catalog
	}
	if override.Departments.Intro != "" {
		base.Departments.Intro = override.Departments.Intro
	}
	if override.Departments.Leadership != "" {
		base.Departments.Leadership = override.Departments.Leadership
	}

	if len(override.Decoding.Encodings) > 0 {
		base.Decoding.Encodings = override.Decoding.Encodings
	}

	base.Newsletter = override.Newsletter.WithDefaults()

	if override.Output.Path != "" {
		base.Output.Path = override.Output.Path
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Sources: []string{"local"},
		Share: ShareConfig{
			URL:             "https://drive.rmc-itabashi.jp/index.php/s/5rX5tfHQep43eZr",
			PageTimeout:     15 * time.Second,
			DownloadTimeout: 120 * time.Second,
			MaxArchiveMB:    256,
			UserAgent:       "NewsletterDesk/1.0",
		},
		Departments: DepartmentsConfig{
			Catalog:    append([]string(nil), domain.DefaultDepartments...),
			Intro:      domain.DepartmentIntro,
			Leadership: domain.DepartmentLeadership,
		},
		Decoding:   DecodingConfig{Encodings: append([]string(nil), textdecode.DefaultEncodings...)},
		Newsletter: newsletter.DefaultBoilerplate(),
	}
}
