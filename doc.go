// Package deckgen converts declarative YAML topic files into presentation
// artifacts: a PowerPoint deck (.pptx) and LaTeX Beamer source (.tex) that
// can be compiled to PDF with an external pdflatex installation.
//
// # Quick Start
//
// Load a topic and generate both artifacts:
//
//	topic, err := deckgen.LoadTopic("probability.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc, err := deckgen.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	art, err := svc.Generate(ctx, topic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("probability.pptx", art.Deck, 0644)
//	os.WriteFile("probability.tex", art.TexSource, 0644)
//
// art.TexAssets holds chart images referenced by the LaTeX source; write them
// relative to the .tex file before compiling.
//
// # Topic Files
//
// A topic file describes a title, an optional subtitle, and an ordered list of
// slides. Each slide holds content items: plain strings become bullets, and
// mappings with a "kind" field select a content-block template:
//
//	title: Descriptive Statistics
//	slides:
//	  - title: Measures of Position
//	    content:
//	      - The median splits the sorted sample in half
//	      - kind: formula
//	        text: \bar{x} = \frac{1}{n}\sum_{i=1}^{n} x_i
//	      - kind: bar_chart
//	        categories: [A, B, C]
//	        values: [12, 30, 8]
//
// Supported kinds: note, example, problem, formula, computation, components,
// solution, table, bar_chart, line_chart, pie_chart, scatter_chart. An
// unknown kind fails the render with an error naming the kind and the slide.
//
// # Pipeline
//
// Generation is a single synchronous pass:
//
//  1. Parse and validate the topic (structure, table shapes, chart series)
//  2. Dispatch each content item to the kind's renderer, in input order
//  3. Assemble the deck (internal OPC writer) and the Beamer source
//     (embedded template, overridable)
//
// # PDF Compilation
//
// Compiling the Beamer source requires pdflatex on PATH. Use Engine:
//
//	eng := deckgen.NewEngine("pdflatex")
//	if err := eng.Available(); err == nil {
//	    pdfPath, err := eng.Compile(ctx, "slides/topic.tex", "pdfs")
//	    ...
//	}
//
// The engine runs two passes for cross-references and removes auxiliary
// files afterwards. deckgen does not implement the typesetting engine.
package deckgen
