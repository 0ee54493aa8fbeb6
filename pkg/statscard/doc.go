// Package statscard renders the GitHub stats card.
//
// [Render] is the single entry point: it takes a [Stats] record and
// [Options] and returns a self-contained SVG document. Rendering is a pure
// function of its inputs plus the injected [Clock], which supplies the year
// shown in the commits label.
//
// # Pipeline
//
//	Stats + Options
//	  -> Assemble      ordered, filtered []StatEntry
//	  -> BuildRow      one positioned fragment per entry
//	  -> layout.Stack  vertical offsets with a uniform gap
//	  -> frame.Card    envelope, stylesheet, title, rank circle
//
// # Collaborators
//
// Icon glyphs, string tables and the stylesheet are supplied through the
// [Glyphs], [Translator] and [StylesheetFunc] interfaces. The defaults come
// from the icons, i18n and styles packages and can be swapped with
// [RenderOption] values.
package statscard
