/*
Package x contains the extensions of the kitty application

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together by cmd/kittyd/app:

	auth   signer authentication
	cash   coin balances and payments
	kitty  the kitty registry
	utils  logging, recovery and savepoint decorators

This package holds the helpers shared by all of them, most notably the
Authenticator interface.
*/
package x
