// Package segment models the records of the image segmentation dataset:
// 3x3 pixel regions drawn from seven outdoor images, each described by 19
// numeric features and labelled with one of seven classes.
//
// Class is a closed enumeration. ParseClass maps the dataset's tokens
// (brickface, sky, foliage, cement, window, path, grass) onto it and fails
// with ErrUnknownClass for anything else, so a typo in an input file stops
// the run instead of producing an unscored node.
package segment
