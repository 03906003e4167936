package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldFileID     = "file_id"
	FieldFileName   = "file_name"
	FieldMimeType   = "mime_type"
	FieldMerchant   = "merchant"
	FieldItemCount  = "item_count"
	FieldPageCount  = "page_count"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldWarning    = "warning"
)
