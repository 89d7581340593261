// config.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package dawg

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the ambient settings a dawg-building program reads from
// its environment: the LRU capacity for a QueryCache, the directory the
// demo CLI reads word lists from and writes serialised graphs to, and
// (optionally) a Cloud Datastore project to persist named graphs to.
type Config struct {
	CacheSize        int
	DataDir          string
	DatastoreProject string
}

// LoadConfig loads a .env file from the working directory if one is
// present (a missing file is not an error — mirroring how an optional
// .env is treated elsewhere in this codebase's deployment), then
// overlays process environment variables of the same name, and finally
// parses them into a Config. DAWG_CACHE_SIZE, DAWG_DATA_DIR, and
// DAWG_DATASTORE_PROJECT are the recognised variables; an unset
// DAWG_CACHE_SIZE defaults to DefaultCacheSize, and a non-numeric value
// is reported as an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		CacheSize:        DefaultCacheSize,
		DataDir:          ".",
		DatastoreProject: os.Getenv("DAWG_DATASTORE_PROJECT"),
	}
	if dir := os.Getenv("DAWG_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if raw := os.Getenv("DAWG_CACHE_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("dawg: invalid DAWG_CACHE_SIZE %q: %w", raw, err)
		}
		cfg.CacheSize = n
	}
	return cfg, nil
}
