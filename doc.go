/*

Package weave defines interfaces used throughout the app, such as: storage,
transactions, handlers, addresses and block information.

The kitty registry itself lives in x/kitty. Everything in this package is
shared infrastructure that the extensions are woven together with.

*/

package weave
