package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// SourceKind represents where the people list is read from.
	SourceKind string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv" // default
	TextOut    OutputMode = "text"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All people sources supported.
const (
	JSONSource       SourceKind = "json" // default
	SQLiteSource     SourceKind = "sqlite"
	MySQLSource      SourceKind = "mysql"
	PostgreSQLSource SourceKind = "postgresql"
)

// Default output file names for modes that always write to a file.
const (
	DefaultCSVFile     = "TopPerformers.csv"
	DefaultParquetFile = "TopPerformers.parquet"
)

// EmptyResultMessage is shown instead of writing output when nobody qualifies.
const EmptyResultMessage = "You have set too high standards. Nobody meets them."

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSourceKinds lists all valid people sources.
var ValidSourceKinds = map[SourceKind]struct{}{
	JSONSource:       {},
	SQLiteSource:     {},
	MySQLSource:      {},
	PostgreSQLSource: {},
}
