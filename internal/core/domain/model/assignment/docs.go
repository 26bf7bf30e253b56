// Package assignment implements the relation between couriers and orders.
//
// An assignment records when an order was bound to a courier, when it was
// completed, the delivery duration, and the pay coefficient frozen from the
// courier's vehicle class at assign time. Rows move through a small state
// machine (UNBOUND, OUTSTANDING, COMPLETED); the completion transition and
// its duration arithmetic live on the entity itself.
package assignment
