package entity

// DatasetSource identifica de onde o dataset é lido.
type DatasetSource struct {
	// Location é um caminho local, file:// ou s3://bucket/key.
	Location string
	// AWSProfile e AWSRegion só são usados para origens s3://.
	AWSProfile string
	AWSRegion  string
}

func (s DatasetSource) String() string {
	return s.Location
}
