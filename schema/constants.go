package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ColumnRole represents how a column takes part in aggregation.
	ColumnRole string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// All column roles supported.
const (
	AdditiveRole       ColumnRole = "additive"        // summed
	IntensiveRatioRole ColumnRole = "intensive-ratio" // averaged over strictly positive samples
	IntensivePlainRole ColumnRole = "intensive-plain" // averaged over present samples
	IdentifierRole     ColumnRole = "identifier"      // the date column
	IgnoredRole        ColumnRole = "ignored"         // passed through untouched
)

// SummaryLabel marks the synthetic total/average row in place of a date.
const SummaryLabel = "Celkem/Průměr"

// DateColumn is the identifier column every export must carry.
const DateColumn = "date"

// DateTimeFormat is how valid UTC dates are written back out.
const DateTimeFormat = "2006-01-02 15:04:05"

// DateTimeOffsetFormat is used for dates carrying a non-zero UTC offset.
const DateTimeOffsetFormat = "2006-01-02 15:04:05Z07:00"

// DateFormat is the day-level representation used for date windows.
const DateFormat = "2006-01-02"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}
