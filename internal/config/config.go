package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Columns ColumnsConfig `yaml:"columns" mapstructure:"columns"`
	Filter  FilterConfig  `yaml:"filter" mapstructure:"filter"`
	Message MessageConfig `yaml:"message" mapstructure:"message"`
	Contact ContactConfig `yaml:"contact" mapstructure:"contact"`
	Export  ExportConfig  `yaml:"export" mapstructure:"export"`
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ColumnsConfig names the report columns the pipeline reads. Matching is
// exact and case-sensitive against the file header.
type ColumnsConfig struct {
	CustomerID string `yaml:"customer_id" mapstructure:"customer_id"`
	FullName   string `yaml:"full_name" mapstructure:"full_name"`
	Phone      string `yaml:"phone" mapstructure:"phone"`
	Attempts   string `yaml:"attempts" mapstructure:"attempts"`
	Status     string `yaml:"status" mapstructure:"status"`
	OrderID    string `yaml:"order_id" mapstructure:"order_id"`       // optional column
	OrderValue string `yaml:"order_value" mapstructure:"order_value"` // optional column
}

// Required returns the columns the schema validator demands, in report order.
func (c ColumnsConfig) Required() []string {
	return []string{c.CustomerID, c.FullName, c.Phone, c.Attempts, c.Status}
}

// FilterConfig configures the eligibility filter.
type FilterConfig struct {
	// TargetStatus is the exact status a saved-but-unsent order carries.
	TargetStatus string `yaml:"target_status" mapstructure:"target_status"`
}

// MessageConfig configures outreach message composition.
type MessageConfig struct {
	// Template is the message body with the single substitution
	// point {first_name}.
	Template string `yaml:"template" mapstructure:"template"`
	// Fallback is the display name used when the report has no usable name.
	Fallback string `yaml:"fallback" mapstructure:"fallback"`
}

// ContactConfig configures WhatsApp link generation.
type ContactConfig struct {
	// CountryCode is prepended to native-app links.
	CountryCode string `yaml:"country_code" mapstructure:"country_code"`
}

// ExportConfig configures the lead list export.
type ExportConfig struct {
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	Path      string `yaml:"path" mapstructure:"path"`
}

// InputConfig configures report ingestion.
type InputConfig struct {
	// Delimiter used when reading delimited text reports.
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	// Encoding is an IANA charset name for legacy exports ("" = UTF-8).
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
	// Sheet selects the worksheet for XLSX reports ("" = first sheet).
	Sheet string `yaml:"sheet" mapstructure:"sheet"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultTemplate is the standing sales outreach copy. The only recognized
// substitution point is {first_name}.
const DefaultTemplate = "Olá {first_name}! Aqui é a Sofia da Jumbo CDP! 👋\n\n" +
	"Vimos que você iniciou seu cadastro, mas não conseguiu finalizar sua compra na Jumbo CDP, por isso tenho uma ótima notícia para você:\n\n" +
	"*Consegui um DESCONTO EXTRA de 3% no PIX* no valor total do seu pedido! 🎁\n\n" +
	"Sabemos que pontos como a *carteirinha de visitante* ou os *dados do detento* costumam gerar dúvidas.\n\n" +
	"Para que eu possa *ativar seu desconto e te enviar o passo a passo* para resolver isso de forma rápida, qual foi o principal *obstáculo* que você encontrou no site?"

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADQUAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("columns.customer_id", "Codigo Cliente")
	v.SetDefault("columns.full_name", "Cliente")
	v.SetDefault("columns.phone", "Fone Fixo")
	v.SetDefault("columns.attempts", "Quant. Pedidos Enviados")
	v.SetDefault("columns.status", "Status")
	v.SetDefault("columns.order_id", "Numero Pedido")
	v.SetDefault("columns.order_value", "Valor Pedido")
	v.SetDefault("filter.target_status", "Pedido salvo")
	v.SetDefault("message.template", DefaultTemplate)
	v.SetDefault("message.fallback", "Cliente")
	v.SetDefault("contact.country_code", "55")
	v.SetDefault("export.delimiter", ",")
	v.SetDefault("export.path", "leads_qualificados.csv")
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.encoding", "")
	v.SetDefault("input.sheet", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
