// Package response splits raw AniDB UDP replies into a status header and delimited data lines.
package response

// Reply codes of the commands whose replies carry masked records, plus the
// generic codes any command may return.
const (
	CodeFile        = 220
	CodeAnime       = 230
	CodeNoSuchFile  = 320
	CodeNoSuchAnime = 330

	CodeLoginFirst        = 501
	CodeAccessDenied      = 502
	CodeIllegalInput      = 505
	CodeInvalidSession    = 506
	CodeBanned            = 555
	CodeUnknownCommand    = 598
	CodeInternalError     = 600
	CodeOutOfService      = 601
	CodeServerBusy        = 602
	CodeTimeout           = 604
	CodeErrorStatusLowest = 500
)

var names = map[int]string{
	CodeFile:           "FILE",
	CodeAnime:          "ANIME",
	CodeNoSuchFile:     "NO SUCH FILE",
	CodeNoSuchAnime:    "NO SUCH ANIME",
	CodeLoginFirst:     "LOGIN FIRST",
	CodeAccessDenied:   "ACCESS DENIED",
	CodeIllegalInput:   "ILLEGAL INPUT OR ACCESS DENIED",
	CodeInvalidSession: "INVALID SESSION",
	CodeBanned:         "BANNED",
	CodeUnknownCommand: "UNKNOWN COMMAND",
	CodeInternalError:  "INTERNAL SERVER ERROR",
	CodeOutOfService:   "ANIDB OUT OF SERVICE - TRY AGAIN LATER",
	CodeServerBusy:     "SERVER BUSY",
	CodeTimeout:        "TIMEOUT - DELAY AND RESUBMIT",
}

// StatusName returns the protocol name of a known reply code, or an empty string.
func StatusName(code int) string {
	return names[code]
}

// IsErrorStatus reports whether a reply code is a client or server error.
// Error replies never carry data lines.
func IsErrorStatus(code int) bool {
	return code >= CodeErrorStatusLowest
}
