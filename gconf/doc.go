/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension stores a single configuration message under the "_c:<package>"
key. The initial value is loaded from the genesis file by InitConfig and read
back with Load.
*/
package gconf
