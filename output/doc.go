// Package output - output directory layout and file naming for maze exports.
//
// What it does
//
// A Manager owns one base directory (default "output") with a fixed set of
// per-format subdirectories:
//
//	images/      PNG and JPEG rasters
//	ascii/       text renditions
//	svg/         vector exports
//	benchmarks/  timing reports
//	temp/        scratch files, reclaimed by CleanTemp
//
// Init builds the full structure, probes writability and drops a README.txt
// describing it. Path routes a filename into the right subdirectory and
// suffixes it _1, _2, … when the name is taken. TimestampedPath and AutoPath
// build names from the clock or a per-prefix counter. AlgorithmPath and
// DatePath nest one level deeper for bulk runs.
//
// Filenames
//
// Every name passes through CleanFilename: characters unsafe on common
// filesystems become underscores, surrounding spaces and dots are trimmed,
// and an empty result becomes "unnamed".
//
// Errors
//
//   - ErrNotWritable - the directory exists but a write probe failed
//   - ErrUnknownKind - List was asked for a subdirectory that is not part of
//     the layout
//
// Operating system failures (permissions, missing files) are returned
// wrapped with their operation and path.
package output
