/*
Package logging provides leveled logging for the LiftLens backend.

Log output goes through the standard library log package with a level
prefix ([DEBUG], [INFO], [WARN], [ERROR]) so that a single consistent
format reaches stdout regardless of which package emits the message.

The level is chosen once from the environment: DEBUG=true (or 1/yes/on)
forces debug logging, otherwise LOG_LEVEL selects one of debug, info,
warn or error. The default is info.
*/
package logging
