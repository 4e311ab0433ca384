// Package tsdata provides mutable containers for possibly multivariate,
// unequal-length, irregularly-sampled time-series machine-learning
// data, plus chart rendering for the containers.
//
// The containers nest three levels deep: a timeseries.Series holds one
// ordered sequence of values with optional timestamps, an
// instance.Instance groups series into dimensions with classification
// or regression label state, and a dataset.Dataset groups instances
// under one shared label vocabulary. Aggregate metadata at every level
// is computed lazily and invalidated precisely by change notifications
// propagating up from mutated children.
//
// All containers assume a single writer; concurrent mutation must be
// serialized by the caller.
package tsdata
