package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Contactbook/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Contactbook"
	AppID             = "com.github.tartampluch.go-contactbook"
	KeyringService    = "com.github.tartampluch.go-contactbook"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	DataFileName      = "contactbook.json"
	SettingsFileName  = "settings.toml"
	TempFilePattern   = ".contactbook-*.tmp"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the data file, settings and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion         = "version"
	FlagDebug           = "debug"
	FlagConfig          = "config"
	FlagData            = "data"
	FlagPlain           = "plain"
	FlagTUI             = "tui"
	FlagSetPassword     = "set-password"
	FlagDescVersion     = "Show application version and exit"
	FlagDescDebug       = "Enable debug logging"
	FlagDescConfig      = "Path to the settings file (TOML)"
	FlagDescData        = "Path to the address book file (overrides settings)"
	FlagDescPlain       = "Use a plain line-oriented shell instead of the full-screen UI"
	FlagDescTUI         = "Use the full-screen terminal UI instead of the desktop window"
	FlagDescSetPassword = "Store the import password for USER in the system keyring (read from stdin)"
	MsgVersionOutput    = "%s version %s (%s/%s)\n"
	MsgPasswordPrompt   = "Password for %s: "
	MsgPasswordStored   = "Password stored.\n"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	DefaultPort     = "" // Calendar feed disabled unless a port is configured.
	MinPort         = 1
	MaxPort         = 65535
)

// SupportedLanguages lists the locales shipped in internal/i18n/locales.
var SupportedLanguages = []string{"en", "fr"}

// VCardMediaTypes lists the Content-Type values accepted for a remote import.
var VCardMediaTypes = []string{"text/vcard", "text/x-vcard", "text/directory", "text/plain", "application/octet-stream"}

// DefaultTagColors is the round-robin palette for tag labels (ANSI 256 codes).
var DefaultTagColors = []string{"33", "170", "42", "214", "75", "205", "141", "178"}

// -----------------------------------------------------------------------------
// Entity Rules
// -----------------------------------------------------------------------------

const (
	MaxNameLength     = 100
	MinPhoneDigits    = 3
	DateTimeLayout    = "2006-01-02 15:04"
	DateLayout        = "2006-01-02"
	EventKeySeparator = "@"
)

// Field names. They double as display column names and as the suffix of
// the err_invalid_* translation keys.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldLink        = "link"
	FieldTags        = "tags"
	FieldTag         = "tag"
	FieldEvents      = "events"
	FieldTime        = "time"
	FieldDateTime    = "datetime"
	FieldDescription = "description"
	FieldContacts    = "contacts"
	FieldContact     = "contact" // Whole-contact rule: phone or email required.
	FieldPeriod      = "period"  // Whole-event rule: end not before start.
)

// Validation reasons (technical, for logs).
const (
	ReasonName      = "must start with a letter or digit and contain only letters, digits, spaces and ' . -"
	ReasonPhone     = "must contain at least 3 digits, optionally prefixed by +"
	ReasonEmail     = "must be of the form local-part@domain"
	ReasonBlank     = "must not be blank"
	ReasonLink      = "must be an absolute http or https URL"
	ReasonDateTime  = "must be YYYY-MM-DD or YYYY-MM-DD HH:MM"
	ReasonTag       = "must contain only letters, digits, _ and -"
	ReasonReachable = "needs a phone number or an email address"
	ReasonPeriod    = "end must not be before start"
)

// -----------------------------------------------------------------------------
// Command Syntax
// -----------------------------------------------------------------------------

const (
	CmdAdd     = "add"
	CmdEdit    = "edit"
	CmdDelete  = "delete"
	CmdLink    = "link"
	CmdUnlink  = "unlink"
	CmdFind    = "find"
	CmdList    = "list"
	CmdShow    = "show"
	CmdHide    = "hide"
	CmdSort    = "sort"
	CmdClear   = "clear"
	CmdUndo    = "undo"
	CmdRedo    = "redo"
	CmdHistory = "history"
	CmdImport  = "import"
	CmdExport  = "export"
	CmdHelp    = "help"
	CmdExit    = "exit"

	TargetContact  = "contact"
	TargetEvent    = "event"
	TargetContacts = "contacts"
	TargetEvents   = "events"
	SubClear       = "clear"

	PrefixName        = "n/"
	PrefixPhone       = "p/"
	PrefixEmail       = "e/"
	PrefixAddress     = "a/"
	PrefixLink        = "l/"
	PrefixTag         = "t/"
	PrefixFrom        = "from/"
	PrefixTo          = "to/"
	PrefixDescription = "d/"
	PrefixEvent       = "ev/"
	PrefixContact     = "c/"
	PrefixUser        = "u/"
)

// Usage lines, shown verbatim (syntax is not translated).
const (
	UsageAddContact = "add contact n/NAME [p/PHONE] [e/EMAIL] [a/ADDRESS] [l/LINK] [t/TAG]..."
	UsageAddEvent   = "add event n/NAME from/START [to/END] [a/ADDRESS] [d/DESCRIPTION] [t/TAG]..."
	UsageEdit       = "edit contact|event INDEX [FIELD/VALUE]..."
	UsageDelete     = "delete contact|event INDEX"
	UsageLink       = "link|unlink ev/EVENT_INDEX c/CONTACT_INDEX"
	UsageFind       = "find contact|event KEYWORD... [t/TAG]..."
	UsageList       = "list [contact|event]"
	UsageDisplay    = "show|hide contact|event FIELD..."
	UsageSort       = "sort contact|event"
	UsageHistory    = "history [clear]"
	UsageImport     = "import PATH|URL [u/USER]"
	UsageExport     = "export contacts|events PATH"
	UsageNoArgs     = "%s (takes no arguments)"
)

// Terminal interface.
const (
	ShellPrompt  = "> "
	InputCharMax = 512
	PaneMinWidth = 30
	KeyQuit      = "ctrl+c"
	KeyCancel    = "esc"
	KeySubmit    = "enter"
	KeyHistoryUp = "up"
	KeyHistoryDn = "down"
)

// Desktop interface.
const (
	MainWinWidth        = 1100
	MainWinHeight       = 680
	SettingsWinWidth    = 480
	ListSplitOffset     = 0.55
	LayoutColumnsDouble = 2
	PortDigitsMax       = 5

	ColWidthIndex   = 48
	ColWidthName    = 170
	ColWidthTime    = 220
	ColWidthDefault = 150

	TablePlaceholder    = "--------------------"
	PlaceholderURL      = "https://dav.example.com/addressbooks/me/"
	PlaceholderReminder = "-PT15M"
	SortIconAsc         = " ▲"
	SortIconDesc        = " ▼"
	TagCellPrefix       = "#"

	ExportContactsName = "contacts.vcf"
	ExportEventsName   = "events.ics"
	ExtVCF             = ".vcf"
	ExtVCard           = ".vcard"
	ExtICS             = ".ics"
	ExtJSON            = ".json"

	// FieldIndex names the list position column, the number commands take.
	FieldIndex = "index"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contactbook//Exchange//EN"
	ICalCalName   = "Contactbook Events"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontactbook"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropLocation    = "LOCATION"
	PropCategories  = "CATEGORIES"
	PropAttendee    = "ATTENDEE"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"
	ParamCN         = "CN"
	MailtoPrefix    = "mailto:"

	DefaultICalRefresh = 1 * time.Hour
	ICalFloatingLayout = "20060102T150405"
	FormatUID          = "%s@%s"
)

// -----------------------------------------------------------------------------
// Reminders (ISO 8601 durations)
// -----------------------------------------------------------------------------

const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Storage
	StorageIndent = "  "

	// MaxConsecutiveCardErrors aborts an import whose stream keeps failing.
	MaxConsecutiveCardErrors = 50
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderAccept          = "Accept"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar = "text/calendar; charset=utf-8"
	MimeNoSniff      = "nosniff"

	// AcceptVCard is sent when downloading an address book.
	AcceptVCard         = "text/vcard, text/x-vcard;q=0.9, text/directory;q=0.5, */*;q=0.1"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidValue       = "invalid field value"
	ErrDuplicateEntity    = "duplicate entity"
	ErrEntityNotFound     = "entity not found"
	ErrAlreadyLinked      = "event and contact are already linked"
	ErrNotLinked          = "event and contact are not linked"
	ErrUnknownField       = "unknown display field"
	ErrHistoryUnavailable = "history unavailable"
	ErrNoUndo             = "no command to undo"
	ErrNoRedo             = "no command to redo"
	ErrNoState            = "history is empty"
	ErrLoadContacts       = "cannot load contacts"
	ErrLoadEvents         = "cannot load events"
	ErrUnknownCommand     = "unknown command"
	ErrUsage              = "invalid command format"
	ErrInvalidIndex       = "invalid index"
	ErrUnknownKind        = "unknown command kind"
	ErrPolicyKind         = "history commands cannot be undoable"
	ErrSourceEmpty        = "import source is empty"
	ErrUnauthorized       = "address book server rejected the credentials"
	ErrHTTPStatus         = "address book server returned an error"
	ErrContentType        = "response is not a vCard stream"
	ErrRequest            = "failed to create request"
	ErrNetwork            = "network error during fetch"
	ErrSourceOpen         = "cannot open import file"
	ErrFetcherMissing     = "internal error: network fetcher is not initialized"
	ErrExchangeMissing    = "import and export are not available"
	ErrPortRequired       = "server port is required"
	ErrPortNumber         = "server port must be a number"
	ErrPortRange          = "server port must be between 1 and 65535"
	ErrLanguage           = "unsupported language"
	ErrReminder           = "reminder must be an ISO 8601 duration such as -P1D"
	ErrServerStartup      = "server startup failed"
	ErrServerShutdown     = "server shutdown failed"
	ErrInvalidURL         = "invalid URL structure"
	ErrProtocol           = "unsupported protocol scheme (http/https only)"
	ErrVCardParse         = "failed to parse vCard stream"
	ErrVCardEncode        = "failed to encode vCard data"
	ErrICalEncode         = "failed to encode iCalendar data"
	ErrStorageRead        = "failed to read address book"
	ErrStorageDecode      = "failed to decode address book"
	ErrStorageEncode      = "failed to encode address book"
	ErrStorageWrite       = "failed to write address book"
	ErrStorageRecord      = "invalid record in address book"
	ErrSettingsRead       = "failed to read settings"
	ErrSettingsDecode     = "failed to parse settings"
	ErrSettingsWrite      = "failed to write settings"
	ErrExportWrite        = "failed to write export file"
	ErrKeyring            = "keyring access failed"
	ErrLogFile            = "failed to open log file"
	ErrCacheDir           = "could not determine user cache dir"
	ErrConfigDir          = "could not determine user config dir"
	ErrCreateDir          = "could not create app directory"
	ErrAppFailed          = "application failed unexpectedly"
	ErrWriteResp          = "failed to write response body"
	ErrLocalesAccess      = "failed to access embedded locales"
	ErrLocaleLoad         = "failed to load locale file"
	ErrUIFailed           = "user interface terminated with an error"
	ErrReadInput          = "failed to read input"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackName = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when there are no events.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgAppStop          = "Application stopped gracefully"
	MsgAppStarting      = "Starting application"
	MsgCommandExecuted  = "Command executed"
	MsgCommandFailed    = "Command failed"
	MsgHistoryCommit    = "History committed"
	MsgHistoryRestore   = "History restored"
	MsgImportStarted    = "Import started"
	MsgImportDone       = "Import finished"
	MsgExportDone       = "Export written"
	MsgSkippedCard      = "Skipping malformed vCard"
	MsgSkippedContact   = "Skipping invalid contact"
	MsgStorageLoaded    = "Address book loaded"
	MsgStorageSaved     = "Address book saved"
	MsgStorageMissing   = "No address book yet, starting empty"
	MsgSettingsMissing  = "No settings file, using defaults"
	MsgServerListen     = "HTTP server listening"
	MsgServerStop       = "Shutting down HTTP server..."
	MsgFetchStart       = "Initiating vCard download"
	MsgFetchRejected    = "Address book server answer rejected"
	MsgFetchDownloading = "vCards downloading"
	MsgCacheUpdated     = "Calendar cache updated"
	MsgLocaleSkip       = "Skipping non-locale file"
	MsgLocaleBadName    = "Skipping malformed locale filename"
	MsgLocaleLoaded     = "Locale loaded successfully"
	MsgTransMissing     = "Missing translation key"
	MsgPassFail         = "Password retrieval failed (might be empty)"
	MsgLogWarning       = "Warning: %s at %s: %v\n"
	MsgCtxCancel        = "Context cancelled, shutting down UI"
	MsgOpenWindow       = "Opening window"
	MsgListSorted       = "List sorted"
	MsgSettingsSaved    = "Settings saved"
	MsgUIMode           = "User interface selected"
	MsgCredSaveFail     = "Failed to save credentials to keyring"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Command feedback
	TKeyContactAdded   = "msg_contact_added"   // Requires Name
	TKeyEventAdded     = "msg_event_added"     // Requires Name
	TKeyContactEdited  = "msg_contact_edited"  // Requires Name
	TKeyEventEdited    = "msg_event_edited"    // Requires Name
	TKeyContactDeleted = "msg_contact_deleted" // Requires Name
	TKeyEventDeleted   = "msg_event_deleted"   // Requires Name
	TKeyLinked         = "msg_linked"          // Requires Event, Contact
	TKeyUnlinked       = "msg_unlinked"        // Requires Event, Contact
	TKeyContactsListed = "msg_contacts_listed" // Plural on Count
	TKeyEventsListed   = "msg_events_listed"   // Plural on Count
	TKeyListedAll      = "msg_listed_all"
	TKeyColumnsUpdated = "msg_columns_updated"
	TKeyContactsSorted = "msg_contacts_sorted"
	TKeyEventsSorted   = "msg_events_sorted"
	TKeyCleared        = "msg_cleared"
	TKeyUndone         = "msg_undone"
	TKeyRedone         = "msg_redone"
	TKeyHistoryStatus  = "msg_history_status" // Requires Undo, Redo
	TKeyHistoryCleared = "msg_history_cleared"
	TKeyImported       = "msg_imported" // Plural on Count, requires Skipped
	TKeyExported       = "msg_exported" // Plural on Count, requires Path
	TKeyHelp           = "msg_help"
	TKeyBye            = "msg_bye"

	// Command failures
	TKeyErrUnknownCommand   = "err_unknown_command" // Requires Input
	TKeyErrUsage            = "err_usage"           // Requires Usage
	TKeyErrInvalidIndex     = "err_invalid_index"   // Requires Index
	TKeyErrDuplicateContact = "err_duplicate_contact"
	TKeyErrDuplicateEvent   = "err_duplicate_event"
	TKeyErrNotFound         = "err_not_found"
	TKeyErrNoUndo           = "err_no_undo"
	TKeyErrNoRedo           = "err_no_redo"
	TKeyErrAlreadyLinked    = "err_already_linked"
	TKeyErrNotLinked        = "err_not_linked"
	TKeyErrUnknownField     = "err_unknown_field" // Requires Field, Fields
	TKeyErrImport           = "err_import"        // Requires Error
	TKeyErrExport           = "err_export"        // Requires Error
	TKeyErrInternal         = "err_internal"      // Requires Error

	// TKeyErrInvalidPrefix + a Field* constant names the validation message
	// for that field. Requires Value.
	TKeyErrInvalidPrefix = "err_invalid_"

	// Labels
	TKeyLblContacts       = "lbl_contacts"
	TKeyLblEvents         = "lbl_events"
	TKeyLblEmpty          = "lbl_empty"
	TKeyLblFilter         = "lbl_filter" // Requires Filter
	TKeyLblPrompt         = "lbl_prompt"
	TKeyLblHistory        = "lbl_history" // Requires Undo, Redo
	TKeyLblPhone          = "lbl_phone"
	TKeyLblEmail          = "lbl_email"
	TKeyLblAddress        = "lbl_address"
	TKeyLblLink           = "lbl_link"
	TKeyLblTags           = "lbl_tags"
	TKeyLblLinkedEvents   = "lbl_linked_events"
	TKeyLblTime           = "lbl_time"
	TKeyLblDescription    = "lbl_description"
	TKeyLblLinkedContacts = "lbl_linked_contacts"

	// Desktop window
	TKeyWinMain            = "win_main"
	TKeyWinSettings        = "win_settings"
	TKeyWinImportURL       = "win_import_url"
	TKeyMenuFile           = "menu_file"
	TKeyMenuImport         = "menu_import"
	TKeyMenuImportURL      = "menu_import_url"
	TKeyMenuExportContacts = "menu_export_contacts"
	TKeyMenuExportEvents   = "menu_export_events"
	TKeyMenuSettings       = "menu_settings"
	TKeyMenuQuit           = "menu_quit"
	TKeyMenuEdit           = "menu_edit"
	TKeyMenuUndo           = "menu_undo"
	TKeyMenuRedo           = "menu_redo"
	TKeyMenuClearHistory   = "menu_clear_history"
	TKeyMenuView           = "menu_view"
	TKeyMenuListAll        = "menu_list_all"
	TKeyMenuSortContacts   = "menu_sort_contacts"
	TKeyMenuSortEvents     = "menu_sort_events"
	TKeyMenuHelp           = "menu_help"
	TKeyMenuCommands       = "menu_commands"
	TKeyColIndex           = "col_index"
	TKeyColName            = "col_name"
	TKeyLblGeneral         = "lbl_general"
	TKeyLblStorage         = "lbl_storage"
	TKeyLblRemote          = "lbl_remote"
	TKeyLblLanguage        = "lbl_language"
	TKeyLblPort            = "lbl_port"
	TKeyLblReminder        = "lbl_reminder"
	TKeyLblDataFile        = "lbl_data_file"
	TKeyLblURL             = "lbl_url"
	TKeyLblUser            = "lbl_user"
	TKeyLblPass            = "lbl_pass"
	TKeyLblFooter          = "lbl_footer" // Requires Version
	TKeyHelpPort           = "help_port"
	TKeyHelpReminder       = "help_reminder"
	TKeyHelpDataFile       = "help_data_file"
	TKeyHelpPass           = "help_pass"
	TKeyBtnSave            = "btn_save"
	TKeyBtnCancel          = "btn_cancel"
	TKeyBtnBrowse          = "btn_browse"
	TKeyBtnImport          = "btn_import"
	TKeyErrPort            = "err_port"
	TKeyErrReminder        = "err_reminder"
	TKeyErrURL             = "err_url"
	TKeySettingsSaved      = "msg_settings_saved"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent   = "component"
	LogKeyError       = "error"
	LogKeyURL         = "url"
	LogKeyStatus      = "status_code"
	LogKeyFile        = "file"
	LogKeyPath        = "path"
	LogKeyLang        = "lang"
	LogKeyKey         = "key"
	LogKeyPort        = "port"
	LogKeyUser        = "user"
	LogKeyKind        = "kind"
	LogKeyUndoable    = "undoable"
	LogKeyCursor      = "cursor"
	LogKeyCount       = "count"
	LogKeySkipped     = "skipped"
	LogKeyContacts    = "contacts"
	LogKeyEvents      = "events"
	LogKeySource      = "source"
	LogKeySizeBytes   = "size_bytes"
	LogKeyETag        = "etag"
	LogKeyContentType = "content_type"
	LogKeyDuration    = "duration_ms"
	LogKeyWindow      = "window"
	LogKeySortCol     = "sort_col"
	LogKeySortAsc     = "sort_asc"
	LogKeyMode        = "mode"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompModel    = "model"
	CompCommand  = "command"
	CompExchange = "exchange"
	CompFetcher  = "fetcher"
	CompStorage  = "storage"
	CompSettings = "settings"
	CompServer   = "server"
	CompUI       = "ui"
	CompI18n     = "i18n"
)
