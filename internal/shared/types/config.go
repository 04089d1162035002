package types

// Config represents the application configuration that can be loaded from a file.
// Campos com tag env podem ser sobrescritos por variáveis de ambiente ECOMDASH_*.
type Config struct {
	DataSource string   `json:"data_source" yaml:"data_source" toml:"data_source" env:"DATA_SOURCE"`
	StartDate  string   `json:"start_date" yaml:"start_date" toml:"start_date" env:"START_DATE"`
	EndDate    string   `json:"end_date" yaml:"end_date" toml:"end_date" env:"END_DATE"`
	TopN       int      `json:"top_n" yaml:"top_n" toml:"top_n" env:"TOP_N"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name" env:"REPORT_NAME"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type" env:"REPORT_TYPE" envSeparator:","`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir" env:"DIR"`
	AWSProfile string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile" env:"AWS_PROFILE"`
	AWSRegion  string   `json:"aws_region" yaml:"aws_region" toml:"aws_region" env:"AWS_REGION"`
	Addr       string   `json:"addr" yaml:"addr" toml:"addr" env:"ADDR"`
}
