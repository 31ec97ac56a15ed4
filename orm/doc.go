/*
Package orm provides an easy to use db wrapper for storing protobuf models.

A ModelBucket stores all entities of a single model type under a common key
prefix. Entities are validated before they are written. Secondary indexes
keep one database entry per (index value, primary key) pair, so that looking
up entities by an index value is a prefix scan.

Buckets can be registered on a weave.QueryRouter to expose their content to
clients, both by primary key and by every declared index.
*/
package orm
