package constant

// Banner is printed above the root command help.
const Banner = `              _     _ _
   __ _ _ __ (_) __| | |__
  / _' | '_ \| |/ _' | '_ \
 | (_| | | | | | (_| | |_) |
  \__,_|_| |_|_|\__,_|_.__/`
