package settings

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// Normalize validates and migrates raw settings, reporting deprecations and
// advisories through r. It operates on a shallow copy; the caller's map is
// left untouched. After normalization the result contains only keys
// meaningful to option conversion plus caller-defined passthrough keys.
func Normalize(s Settings, r diag.Reporter) Settings {
	out := s.Clone()

	if _, ok := out[KeySourceRoot]; ok {
		report(r, diag.Infof(diag.SetUnsupportedSourceRoot, diag.PhaseSettings,
			"the sourceRoot setting is not supported; configure the source-map root on the source-map consumer instead"))
	}

	if _, ok := out[KeyNoExternalResolve]; ok {
		diag.Deprecate(r, diag.DepNoExternalResolve, diag.PhaseSettings, diag.Deprecation{
			Summary: "The noExternalResolve option is deprecated",
			Action:  "use the noResolve option instead",
			Details: "noExternalResolve will be removed in the next major release. " +
				"The compiler understands noResolve directly and external files no " +
				"longer need to be filtered out of resolution.",
		})
		delete(out, KeyNoExternalResolve)
	}

	if _, ok := out[KeySortOutput]; ok {
		diag.Deprecate(r, diag.DepSortOutput, diag.PhaseSettings, diag.Deprecation{
			Summary: "The sortOutput option is deprecated",
			Action:  "remove the sortOutput setting",
			Details: "Output files are ordered automatically based on their " +
				"dependencies, so explicit output sorting is no longer needed.",
		})
		delete(out, KeySortOutput)
	}

	// Silent rename, not a removal: no notice.
	if v, ok := out[KeyDeclarationFiles]; ok {
		out[KeyDeclaration] = v
		delete(out, KeyDeclarationFiles)
	}

	if tag, ok := out[KeyLocale].(string); ok && tag != "" {
		if _, err := language.Parse(tag); err != nil {
			report(r, diag.Warnf(diag.SetBadLocale, diag.PhaseSettings,
				"invalid locale %q: %s", tag, localeHint(err)))
		}
	}

	delete(out, KeyTypescript)
	return out
}

func report(r diag.Reporter, d diag.Diagnostic) {
	if r != nil {
		r.Report(d)
	}
}

func localeHint(err error) string {
	return fmt.Sprintf("%v (expected a BCP 47 tag such as \"en-US\")", err)
}
