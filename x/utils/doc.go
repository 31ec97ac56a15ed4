/*
Package utils provides the decorators every transaction passes through:
panic recovery, logging and the savepoint that makes each transaction
atomic.
*/
package utils
