package docs

import (
	_ "embed"
	"strings"

	"github.com/cipherlab/fhevm-examples/internal/registry"
)

// The canned sections are identical across all examples; only the title,
// category, overview and the two embedded source listings vary.
var (
	//go:embed sections/key_concepts.md
	keyConceptsSection string

	//go:embed sections/critical_patterns.md
	criticalPatternsSection string

	//go:embed sections/common_pitfalls.md
	commonPitfallsSection string

	//go:embed sections/running.md
	runningSection string

	//go:embed sections/resources.md
	resourcesSection string

	//go:embed sections/summary_overview.md
	summaryOverviewSection string
)

const licenseLine = "Licensed under the BSD-3-Clause-Clear license."

// acronyms that stay uppercase in titles derived from kebab-case names.
var titleAcronyms = map[string]string{
	"fhe":   "FHE",
	"erc20": "ERC20",
}

// Title derives a human-readable document title from an example name, e.g.
// "fhe-add" becomes "FHE Add".
func Title(ex registry.Example) string {
	words := strings.Split(ex.Name, "-")
	for i, w := range words {
		if up, ok := titleAcronyms[w]; ok {
			words[i] = up
			continue
		}
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// fenceLanguage picks the fenced-code-block language for a source filename.
func fenceLanguage(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".sol"):
		return "solidity"
	case strings.HasSuffix(filename, ".ts"):
		return "typescript"
	case strings.HasSuffix(filename, ".js"):
		return "javascript"
	default:
		return ""
	}
}

// assemble renders the full markdown document for one example from its
// descriptor and source texts. The output is a pure function of its inputs.
func assemble(ex registry.Example, contractSource, testSource string) string {
	var b strings.Builder

	b.WriteString("# " + Title(ex) + "\n\n")
	b.WriteString("**Category:** " + string(ex.Category) + "\n\n")

	b.WriteString("## Overview\n\n")
	b.WriteString(ex.Description + "\n\n")

	b.WriteString("## Key concepts\n\n")
	b.WriteString(strings.TrimRight(keyConceptsSection, "\n") + "\n\n")

	b.WriteString("## Contract\n\n")
	writeListing(&b, ex.ContractBasename(), contractSource)

	b.WriteString("## Tests\n\n")
	writeListing(&b, ex.TestBasename(), testSource)

	b.WriteString("## Critical patterns\n\n")
	b.WriteString(strings.TrimRight(criticalPatternsSection, "\n") + "\n\n")

	b.WriteString("## Common pitfalls\n\n")
	b.WriteString(strings.TrimRight(commonPitfallsSection, "\n") + "\n\n")

	b.WriteString("## Running the example\n\n")
	b.WriteString(strings.TrimRight(runningSection, "\n") + "\n\n")

	b.WriteString("## Resources\n\n")
	b.WriteString(strings.TrimRight(resourcesSection, "\n") + "\n\n")

	b.WriteString("---\n\n")
	b.WriteString(licenseLine + "\n")

	return b.String()
}

func writeListing(b *strings.Builder, filename, source string) {
	b.WriteString("`" + filename + "`\n\n")
	b.WriteString("```" + fenceLanguage(filename) + "\n")
	b.WriteString(strings.TrimRight(source, "\n"))
	b.WriteString("\n```\n\n")
}

// assembleSummary renders the aggregate index. It lists every registered
// example in declaration order, regardless of whether its document was
// generated successfully.
func assembleSummary(examples []registry.Example) string {
	var b strings.Builder

	b.WriteString("# FHEVM examples\n\n")
	b.WriteString(strings.TrimRight(summaryOverviewSection, "\n") + "\n\n")

	b.WriteString("## Examples\n\n")
	for _, ex := range examples {
		b.WriteString("- [" + Title(ex) + "](" + ex.DocFilename() + ") - " + ex.Description + "\n")
	}
	b.WriteString("\n---\n\n")
	b.WriteString(licenseLine + "\n")

	return b.String()
}
