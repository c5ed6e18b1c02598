// Package posix classifies bytes according to the POSIX locale.
//
// In the POSIX locale, exactly <space>, <form-feed>, <newline>,
// <carriage-return>, <tab>, and <vertical-tab> shall be included in the
// space class. [IsSpace] behaves like isspace(3) from ctype.h in the C
// locale.
//
// Reference:
//
// - https://pubs.opengroup.org/onlinepubs/9699919799/basedefs/V1_chap07.html
//
// - https://linux.die.net/man/3/isspace
package posix
