/*
Package gconf provides a toolset for managing an extension configuration.

Each extension keeps its configuration as a single entity, stored under the
"_c:<package name>" key. The configuration is read from the genesis file
"conf" section, validated and saved when the chain is initialized:

	{
	  "conf": {
	    "multitoken": {"metadata": {"schema": 1}, "minter": "..."}
	  }
	}
*/
package gconf
