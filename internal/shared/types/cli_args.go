package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	DataSource string
	StartDate  string
	EndDate    string
	TopN       int
	ReportName string
	ReportType []string
	Dir        string
	AWSProfile string
	AWSRegion  string
	Addr       string
}
