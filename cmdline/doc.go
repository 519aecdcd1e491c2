// Package cmdline declares the command-line arguments a program accepts and
// parses concrete argument vectors against that declaration.
//
// A declaration set mixes three kinds of arguments: flags, which only signal
// presence; valued options, which consume exactly one following token; and
// positional arguments, which bind unresolved tokens in declaration order.
// Valued options and positionals may restrict their values to an allow-list,
// carry a default, or be marked required.
//
//	args, err := cmdline.New(
//		cmdline.NewFlag("verbose", "v", "Enable verbose output"),
//		cmdline.NewArg("colour", "c", "Output colour", "red", "green", "blue"),
//		cmdline.NewPositional("input", "Input file"),
//	)
//	if err != nil {
//		// a declaration is malformed; this is a programming mistake
//	}
//	if !args.ParseArgv(os.Args) {
//		fmt.Print(args.Usage("mytool"))
//		os.Exit(2)
//	}
//	if args.IsSet("verbose") { ... }
//	colour := args.Get("colour")
//
// Values are stored as strings and converted on read: GetAsInt, GetAsBool,
// GetAsFloat and GetAsDuration surface conversion failures as ordinary
// errors, distinct from parse failures. Parse resets all state up front, so
// repeated calls on one registry are independent; a failed parse leaves only
// the declaration defaults behind.
//
// Parsing a registry concurrently from multiple goroutines is not supported;
// use one registry per goroutine. The declarations themselves are immutable
// after New and safe to share.
package cmdline
