// Package chemkit detects the format of chemical data streams. Given an
// opaque byte or text stream it decides which of roughly thirty structured
// chemical file formats the stream encodes and returns either a format
// discriminator or a reader handle seeded with the full, unconsumed
// content.
//
// Detection is a multi-stage heuristic classifier:
//
//  1. Transparent decompression: gzip input is recognized by its magic
//     bytes and unwrapped before any text inspection.
//  2. Header window: a bounded prefix (65536 bytes by default) is captured
//     once for repeatable inspection; the stream itself is never advanced.
//  3. Line rules: an ordered table of line predicates (header markers,
//     keyword anchors, fixed-column numeric layouts) is evaluated against
//     each line of the window. The table order is a contract; the first
//     match wins.
//  4. Fallback probes: when no rule matches, the first line alone is
//     re-examined with a numeric XYZ probe and then a trial SMILES parse.
//
// # Basic Usage
//
//	factory := chemkit.NewReaderFactory()
//
//	f, err := os.Open("caffeine.mol")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	format, err := factory.DetectFormat(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(format.Name()) // "MDL Molfile"
//
// CreateReader goes one step further and constructs the matching reader:
//
//	reader, err := factory.CreateReader(f)
//	if chemkit.IsUndetermined(err) {
//	    // no format recognized; a reportable outcome, not a fault
//	}
//
// # Recognized vs. Implemented
//
// The detector recognizes more formats than it ships readers for. A
// recognized format without a registered reader dispatches to a
// [DummyReader]: detection succeeds, reading fails with
// [ErrNotImplemented]. Use [RegisterReader] to plug in parsers:
//
//	chemkit.RegisterReader(chemkit.FormatPDB, pdb.NewReader)
//
// # Sources
//
// Classification needs bounded look-ahead. The byte entry points buffer
// any io.Reader internally; the text entry points require a [Source]
// (satisfied by a *bufio.Reader whose buffer covers the header length) and
// fail with [ErrUnsupportedSource] otherwise, before any byte is read.
package chemkit
