// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package web contains HTTP request and client configurations and a small helper to execute requests.
HTTPConfig structure embeds both configurations, and it's the only structure that intended to be used
as part of a user facing configuration.
*/
package web
