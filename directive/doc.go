// Package directive defines the closed tag vocabulary understood by the
// include resolver.
//
// Consumed tags:
//   - !env                                  environment variable substitution
//   - !include                              file include, kind chosen by extension
//   - !include_yaml, !include_yml           forced YAML/JSON document include
//   - !include_text, !include_txt, !file    forced text include
//   - !include_bin                          forced binary (base64) include
//
// Produced tags:
//   - !circular   placeholder for a circular include in graceful mode
//   - !binary     {filename, base64} record for binary includes
//
// Every other tag maps to KindUnknown and is passed through untouched.
package directive
