package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Settings normalization.
	SetInfo                  Code = 1000
	SetUnsupportedSourceRoot Code = 1001
	SetBadLocale             Code = 1002

	// Project-configuration file resolution.
	CfgInfo           Code = 2000
	CfgParseError     Code = 2001
	CfgExtendsMissing Code = 2002
	CfgExtendsCycle   Code = 2003
	CfgNoInputs       Code = 2004
	CfgBadGlob        Code = 2005

	// Compiler-option conversion.
	OptInfo       Code = 3000
	OptBadValue   Code = 3001
	OptBadType    Code = 3002
	OptNeedsValue Code = 3003

	// File IO.
	IOInfo         Code = 4000
	IOFileNotFound Code = 4001
	IOReadFailed   Code = 4002

	// Deprecations and compatibility.
	DepInfo              Code = 5000
	DepNoExternalResolve Code = 5001
	DepSortOutput        Code = 5002
	DepLegacyHandleCall  Code = 5003
	DepLegacyReporterArg Code = 5004
	DepCompilerMissing   Code = 5005
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	SetInfo:                  "settings info",
	SetUnsupportedSourceRoot: "sourceRoot setting is not supported",
	SetBadLocale:             "invalid locale tag",

	CfgInfo:           "project file info",
	CfgParseError:     "failed to parse project file",
	CfgExtendsMissing: "extended configuration not found",
	CfgExtendsCycle:   "circular extends chain",
	CfgNoInputs:       "no inputs found in project file",
	CfgBadGlob:        "invalid include or exclude pattern",

	OptInfo:       "compiler option info",
	OptBadValue:   "invalid compiler option value",
	OptBadType:    "compiler option has wrong type",
	OptNeedsValue: "compiler option requires a value",

	IOInfo:         "file io info",
	IOFileNotFound: "file not found",
	IOReadFailed:   "failed to read file",

	DepInfo:              "deprecation info",
	DepNoExternalResolve: "noExternalResolve is deprecated",
	DepSortOutput:        "sortOutput is deprecated",
	DepLegacyHandleCall:  "calling the entry point with a project is deprecated",
	DepLegacyReporterArg: "reporter as third argument is deprecated",
	DepCompilerMissing:   "no TypeScript compiler implementation available",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SET%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("OPT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("DEP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
