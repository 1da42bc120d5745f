// Package sites holds the site list of one user and its on-disk encodings.
//
// A Site is identified by its exact Name. Counter defaults to 1, Class to
// LongPassword and Login to the empty string. The Document keeps sites in
// insertion order and rejects duplicate names.
//
// Two encodings are supported, selected by file extension:
//
//	user = "John Doe"            # .toml (native)
//	[[sites]]
//	name = "ribeyesteaks.com"
//	counter = 1
//	type = "LongPassword"
//	login = "john@doe.org"
//
//	<MasterPassword>             <!-- .xml, as written by the desktop app -->
//	  <UserName>John Doe</UserName>
//	  <Sites>
//	    <Site>
//	      <SiteName>ribeyesteaks.com</SiteName>
//	      <Counter>1</Counter>
//	      <Login>john@doe.org</Login>
//	      <Type>LongPassword</Type>
//	    </Site>
//	  </Sites>
//	</MasterPassword>
//
// Rendered passwords can be cached on a Document while a command runs. They
// are never written by Save or Marshal.
package sites
