package config

import (
	"encoding/xml"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	Pagination     PaginationConfig     `xml:"PAGINATION"`
	DB             DBConfig             `xml:"DB"`
	Catalog        CatalogConfig        `xml:"CATALOG"`
	Reports        ReportsConfig        `xml:"REPORTS"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port            int    `xml:"PORT"`
	Host            string `xml:"HOST"`
	Path            string `xml:"PATH"`
	TimeZone        string `xml:"TIME_ZONE"`
	EnableBasicAuth bool   `xml:"ENABLE_BASIC_AUTH"`
}

// CatalogConfig points at the ASG question catalog. An empty PATH means the
// built-in catalog is used.
type CatalogConfig struct {
	Path string `xml:"PATH"`
}

// ReportsConfig holds PDF report output settings.
type ReportsConfig struct {
	OutputDir string `xml:"OUTPUT_DIR"`
}

// AuthenticationConfig holds authentication settings.
type AuthenticationConfig struct {
	MultipleSameUserSessions bool `xml:"MULTIPLE_SAME_USER_SESSIONS,attr"`
	EnableTokenAuth          bool `xml:"ENABLE_TOKEN_AUTH"`
	SessionTimeout           int  `xml:"SESSION_TIMEOUT"`
}

// PaginationConfig holds pagination settings.
type PaginationConfig struct {
	PageSize int `xml:"PAGE_SIZE"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Server     string       `xml:"SERVER"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	Driver     string       `xml:"DRIVER"`
	SSLMode    string       `xml:"SSL_MODE"`
	Names      DBNames      `xml:"NAMES"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBNames holds the names defined in the DB section.
type DBNames struct {
	ASG string `xml:"ASG,attr"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// LoadConfig loads and parses the XML configuration from the given file.
// The DB password may be overridden with the ASG_DB_PASSWORD environment
// variable so the file itself never has to carry a real secret.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	var loadErr error
	once.Do(func() {
		data, err := os.ReadFile(xmlPath)
		if err != nil {
			loadErr = err
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			loadErr = err
			return
		}

		if pw := os.Getenv("ASG_DB_PASSWORD"); pw != "" {
			newCfg.DB.Password.Value = pw
		}

		cfg = &newCfg
	})

	if cfg == nil {
		if loadErr != nil {
			return nil, loadErr
		}
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
