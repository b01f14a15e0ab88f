/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package site names the place a call or a render happens.
//
// A site is a short, dot-separated identifier such as "orders.list" or
// "checkout.cart.summary". It has no effect on classification: it only
// travels as a structured logging attribute so that a classified failure
// can be traced back to the component that triggered it.
//
// Sites are optional. The empty Site is valid and means "not named".
package site
