package native

import (
	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
	"github.com/Yugloocamai/gulp-typescript/internal/tsconfig"
)

// ParseConfigContent fully resolves parsed project-file content: the file's
// own compiler options, any extended base configs, and the input file set
// from files/include/exclude. existing is the settings-derived baseline;
// keys present in the file win, absent keys keep the baseline value. All
// problems surface as diagnostics and resolution continues best-effort.
func (impl Impl) ParseConfigContent(raw map[string]any, basePath string, existing compiler.CompilerOptions, configFileName string) (compiler.ParsedConfig, []diag.Diagnostic) {
	expanded, diags := tsconfig.Expand(raw, basePath, configFileName)

	fileOpts, convDiags := impl.ConvertOptions(expanded.CompilerOptions, basePath, configFileName)
	for i := range convDiags {
		convDiags[i].Phase = diag.PhaseProjectFile
	}
	diags = append(diags, convDiags...)

	merged := existing.Merge(fileOpts)

	// The exclude pattern wants the outDir as written in the file, not the
	// absolutized option value.
	rawOutDir, _ := expanded.CompilerOptions["outDir"].(string)
	fileNames, fileDiags := tsconfig.ResolveFileNames(expanded, basePath, rawOutDir, configFileName)
	diags = append(diags, fileDiags...)

	return compiler.ParsedConfig{
		Options:   merged,
		FileNames: fileNames,
		Raw:       raw,
	}, diags
}
