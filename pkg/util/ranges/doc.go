package ranges

// ranges contains utilities for working with IPv4 addresses as integers and for
// converting an inclusive address range ("start - end") into the minimal list of
// CIDR blocks covering it ([ start1/len1, start2/len2, start3/len3 ])
