package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-palette/pkg/branding"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla/components"
)

var defaultAssetFiles = map[string]string{
	branding.AssetStylesheet: StylesheetName,
	branding.AssetRuntime:    RuntimeScriptName,
}

type scriptTag struct {
	Src    string `json:"src,omitempty"`
	Inline string `json:"inline,omitempty"`
	Defer  bool   `json:"defer,omitempty"`
	Async  bool   `json:"async,omitempty"`
	Module bool   `json:"module,omitempty"`
}

// assetURL resolves an asset reference. Absolute paths and URLs pass
// through; keys go to the theme first and the embedded bundle second.
func (r *Renderer) assetURL(ref string, cfg *theme.RendererConfig) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "/") || strings.Contains(ref, "://") {
		return ref
	}
	if cfg != nil && cfg.AssetURL != nil {
		if url := cfg.AssetURL(ref); url != "" {
			return url
		}
	}
	if file, ok := defaultAssetFiles[ref]; ok {
		return r.assetPrefix + "/" + file
	}
	return r.assetPrefix + "/" + ref
}

func (r *Renderer) resolveStylesheets(refs []string, cfg *theme.RendererConfig) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		url := r.assetURL(ref, cfg)
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}
	return out
}

func (r *Renderer) resolveScripts(scripts []components.Script, cfg *theme.RendererConfig) []scriptTag {
	out := make([]scriptTag, 0, len(scripts))
	for _, script := range scripts {
		tag := scriptTag{
			Inline: script.Inline,
			Defer:  script.Defer,
			Async:  script.Async,
			Module: script.Module,
		}
		if script.Src != "" {
			tag.Src = r.assetURL(script.Src, cfg)
			if tag.Src == "" {
				continue
			}
		}
		out = append(out, tag)
	}
	return out
}

// cssVarsStyle renders custom properties as a sorted :root block.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.ContainsAny(token, `"'<>`) {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
