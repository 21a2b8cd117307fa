// Package key defines the canonical set of configuration identifiers.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 11

// Codec
const (
	CodecCharset = "codec.charset"
)

// Default masks used when a request gives none.
const (
	AniDBAmask     = "anidb.amask"
	AniDBFmask     = "anidb.fmask"
	AniDBFileAmask = "anidb.file_amask"
)

// Output rendering.
const (
	OutputJSON = "output.json"
	OutputWrap = "output.wrap"
)

const (
	IconsVariant = "icons.variant"
)

// Logs
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored = "cli.colored"
)
