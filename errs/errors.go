package errs

// Parse errors. These are reported through the shared error slot of a parser
// and their text is what users see.
var (
	ErrUnknownOption        = New("Unknown option '%s'.")
	ErrUnexpectedPositional = New("Unexpected positional argument '%s'.")
	ErrExpectedInteger      = New("Expected integer for '%s%s', got '%s'.")
	ErrExpectedNumber       = New("Expected number for '%s', got '%s'.")
	ErrExpectedTime         = New("Expected date/time for '%s%s', got '%s'.")
	ErrExpectedChoice       = New("Expected one of %s for '%s%s', got '%s'.")
	ErrEmptyValue           = New("Empty values are not allowed for '%s%s'.")
	ErrMissingOption        = New("Missing option '%s%s'.")
	ErrMissingArgument      = New("Missing argument '%s'.")
	ErrHelpNotFound         = New("Could not find help for '%s%s'.")
	ErrTokenizing           = New("Could not split command line '%s'")
)

// Build errors, returned when assembling a parser tree
var (
	ErrEmptyName             = New("name must not be empty")
	ErrBlankMetaVar          = New("meta variable of '%s' must not be blank")
	ErrOptionAlreadyExists   = New("option '%s' already exists in command '%s'")
	ErrShortNameConflict     = New("short name '%s' of option '%s' already used by option '%s' in command '%s'")
	ErrCommandAlreadyExists  = New("command '%s' already exists in command '%s'")
	ErrAlreadyAttached       = New("'%s' is already attached to command '%s'")
	ErrNilArgument           = New("nil %s passed to command '%s'")
	ErrEmptyChoices          = New("choice option '%s' needs at least one candidate")
	ErrUnknownChoiceDefault  = New("default '%s' of choice option '%s' is not a candidate")
	ErrDefaultTypeMismatch   = New("default value of '%s' must be of type %s, got %T")
	ErrUnsupportedSetting    = New("%s is not supported by '%s'")
	ErrRootOnly              = New("%s can only be configured on the root command, not on '%s'")
	ErrEmptyPrefix           = New("long option prefix must not be empty")
	ErrFlagGroupMember       = New("flag group '%s' has a nil member")
	ErrUnsupportedShell      = New("unsupported shell '%s'")
	ErrAlreadyBuilt          = New("command '%s' cannot be configured after its parser was built")
)
