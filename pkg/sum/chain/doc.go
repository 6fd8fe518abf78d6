// Package chain strings solo steps together on a sum.Result[T, error] that
// carries its context along.
//
// A chain usually begins with Decode on a wire record and ends with Finally,
// which turns the outcome into a reply. Then, ThenTry and Map are free
// functions because a method cannot introduce the next step's type.
package chain
