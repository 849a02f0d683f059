// Package arff reads image segmentation records from Weka ARFF files.
//
// Only the subset of the format the dataset uses is supported: header and
// comment lines (those starting with '@' or '%') and blank lines are
// skipped, and every other line is a data row of 19 comma-separated numbers
// followed by a class token. Rows are returned in file order, so a record's
// index is its node id in the clustering.
//
// Errors carry the 1-based line number of the offending row.
package arff
