// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"flag"
)

// FlagSetLoader reduces flags to a configuration map.
// The first parameter is the [flag.FlagSet] holding flags.
// The second, optional, parameter indicates if all flags (even those not explicitly set)
// should be taken into consideration; by default, is false, so that a flag's
// zero value does not shadow the same key coming from a lower priority source.
//
// Flags are read at Load time; if the flag set was not parsed yet, an empty map is returned.
func FlagSetLoader(flgSet *flag.FlagSet, visitAll ...bool) Loader {
	all := false
	if len(visitAll) > 0 {
		all = visitAll[0]
	}

	return LoaderFunc(func() (map[string]string, error) {
		configMap := make(map[string]string)
		if !flgSet.Parsed() {
			return configMap, nil
		}
		storeFlag := func(f *flag.Flag) {
			configMap[f.Name] = f.Value.String()
		}
		if all {
			flgSet.VisitAll(storeFlag)
		} else {
			flgSet.Visit(storeFlag)
		}

		return configMap, nil
	})
}
