/*
Package kitty implements an ownership registry of uniquely identified kitty
tokens.

Every kitty is identified by its 16 byte DNA, a fingerprint derived from block
entropy at mint time. The registry keeps two stores: the kitty bucket holding
the kitty records and the owner index listing the kitties of every owner. For
every committed state each kitty is listed by exactly one owner entry and that
owner is the one recorded on the kitty.

All mutations are executed by the Registry. Each of them is all-or-nothing:
either both stores are updated or none is.
*/
package kitty
