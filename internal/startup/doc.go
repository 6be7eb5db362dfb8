/*
Package startup handles application configuration and startup logging.

Configuration comes from environment variables (with a .env file honored in
development). LoadConfig validates the video storage and database
directories up front so that permission problems surface at boot rather
than on the first request.
*/
package startup
