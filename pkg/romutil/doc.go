/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

// Package romutil contains assorted utilities shared by other Lumen
// packages: the Mouth output abstraction and filesystem-walking helpers
// used by the CLI and the scenario suite.
package romutil
